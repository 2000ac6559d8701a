package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, position, name, price_night, price_day_night, image, gallery, features, description, description1)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position        = VALUES(position),
  name            = VALUES(name),
  price_night     = VALUES(price_night),
  price_day_night = VALUES(price_day_night),
  image           = VALUES(image),
  gallery         = VALUES(gallery),
  features        = VALUES(features),
  description     = VALUES(description),
  description1    = VALUES(description1),
  updated_at      = CURRENT_TIMESTAMP
`

const insertPublishRunSQL = `INSERT INTO publish_runs (rooms) VALUES (?)`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const roomColumns = `id, name, price_night, price_day_night, image, gallery, features, description, description1`

const listRoomsSQL = `SELECT ` + roomColumns + ` FROM rooms ORDER BY position, id`

const getRoomSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
