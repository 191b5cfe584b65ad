package mysql

const insertUserSQL = `
INSERT INTO users (id, name, tel, email, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const getUserSQL = `
SELECT id, name, tel, email, password_hash, role, created_at
FROM users WHERE id = ?
`

const getUserByEmailSQL = `
SELECT id, name, tel, email, password_hash, role, created_at
FROM users WHERE email = ?
`

const insertHotelSQL = `
INSERT INTO hotels
  (id, name, address, district, province, postalcode, tel, region, avg_rating, num_reviews, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?)
`

const getHotelSQL = `
SELECT id, name, address, district, province, postalcode, tel, region, avg_rating, num_reviews, created_at
FROM hotels WHERE id = ?
`

const updateHotelSQL = `
UPDATE hotels
SET name = ?, address = ?, district = ?, province = ?, postalcode = ?, tel = ?, region = ?
WHERE id = ?
`

const setHotelStatsSQL = `
UPDATE hotels SET avg_rating = ?, num_reviews = ? WHERE id = ?
`

const insertBookingSQL = `
INSERT INTO bookings (id, user_id, hotel_id, book_date, created_at)
VALUES (?, ?, ?, ?, ?)
`

// Booking reads join the hotel summary explicitly (query-time join in
// place of the source schema's populate).
const bookingViewSQL = `
SELECT b.id, b.user_id, b.hotel_id, b.book_date, b.created_at,
       h.id, h.name, h.province, h.tel
FROM bookings b
JOIN hotels h ON h.id = b.hotel_id
`

const countBookingsByUserSQL = `
SELECT COUNT(*) FROM bookings WHERE user_id = ?
`

const updateBookingDateSQL = `
UPDATE bookings SET book_date = ? WHERE id = ?
`

const insertReviewSQL = `
INSERT INTO reviews (id, user_id, hotel_id, booking_id, rating, comment, title, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const reviewViewSQL = `
SELECT r.id, r.user_id, r.hotel_id, r.booking_id, r.rating, r.comment, r.title, r.created_at,
       u.id, u.name, u.tel, u.email
FROM reviews r
JOIN users u ON u.id = r.user_id
`

const getReviewByBookingSQL = `
SELECT id, user_id, hotel_id, booking_id, rating, comment, title, created_at
FROM reviews WHERE booking_id = ?
`

const updateReviewSQL = `
UPDATE reviews SET rating = ?, comment = ?, title = ? WHERE id = ?
`

const hotelRatingStatsSQL = `
SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM reviews WHERE hotel_id = ?
`
