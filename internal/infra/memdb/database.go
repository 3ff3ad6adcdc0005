// Package memdb holds the process-local room and booking tables.
//
// Tables are append-only and ordered by insertion. A write transaction holds
// the exclusive lock for its whole duration and stages inserts; they become
// visible, and the id sequences advance, only when the transaction function
// returns nil. Read transactions share the lock with each other.
package memdb

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	ErrReadOnlyTx = errors.New("memdb: insert attempted in a read-only transaction")
	ErrTxClosed   = errors.New("memdb: transaction already finished")
)

type RoomRow struct {
	ID           int64
	Name         string
	Seats        int
	Amenities    []string
	PricePerHour float64
	CreatedAt    time.Time
}

type BookingRow struct {
	ID           int64
	RoomID       int64
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	Status       string
	CreatedAt    time.Time
}

// DBTX is the view a repository gets of the tables inside a transaction.
// Inserts assign and return the row id; the ID on the argument is ignored.
type DBTX interface {
	Rooms() []RoomRow
	Bookings() []BookingRow
	RoomByID(id int64) (RoomRow, bool)
	InsertRoom(row RoomRow) (RoomRow, error)
	InsertBooking(row BookingRow) (BookingRow, error)
}

type DB struct {
	mu         sync.RWMutex
	rooms      []RoomRow
	bookings   []BookingRow
	roomSeq    int64
	bookingSeq int64
}

func New() *DB {
	return &DB{}
}

func (db *DB) ReadTx(ctx context.Context, fn func(tx DBTX) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	tx := &readTx{db: db}
	defer tx.close()
	return fn(tx)
}

func (db *DB) WriteTx(ctx context.Context, fn func(tx DBTX) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	tx := &writeTx{
		readTx:     readTx{db: db},
		roomSeq:    db.roomSeq,
		bookingSeq: db.bookingSeq,
	}
	defer tx.close()

	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Counts returns the committed table sizes.
func (db *DB) Counts() (rooms, bookings int) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.rooms), len(db.bookings)
}

type readTx struct {
	db     *DB
	closed bool
}

func (tx *readTx) close() { tx.closed = true }

func (tx *readTx) Rooms() []RoomRow {
	return cloneRooms(tx.db.rooms)
}

func (tx *readTx) Bookings() []BookingRow {
	return slices.Clone(tx.db.bookings)
}

func (tx *readTx) RoomByID(id int64) (RoomRow, bool) {
	return findRoom(tx.db.rooms, id)
}

func (tx *readTx) InsertRoom(RoomRow) (RoomRow, error) {
	return RoomRow{}, ErrReadOnlyTx
}

func (tx *readTx) InsertBooking(BookingRow) (BookingRow, error) {
	return BookingRow{}, ErrReadOnlyTx
}

type writeTx struct {
	readTx
	pendingRooms    []RoomRow
	pendingBookings []BookingRow
	roomSeq         int64
	bookingSeq      int64
}

func (tx *writeTx) Rooms() []RoomRow {
	return append(tx.readTx.Rooms(), cloneRooms(tx.pendingRooms)...)
}

func (tx *writeTx) Bookings() []BookingRow {
	return append(tx.readTx.Bookings(), tx.pendingBookings...)
}

func (tx *writeTx) RoomByID(id int64) (RoomRow, bool) {
	if row, ok := tx.readTx.RoomByID(id); ok {
		return row, true
	}
	return findRoom(tx.pendingRooms, id)
}

func (tx *writeTx) InsertRoom(row RoomRow) (RoomRow, error) {
	if tx.closed {
		return RoomRow{}, ErrTxClosed
	}
	tx.roomSeq++
	row.ID = tx.roomSeq
	row.Amenities = slices.Clone(row.Amenities)
	tx.pendingRooms = append(tx.pendingRooms, row)
	return row, nil
}

func (tx *writeTx) InsertBooking(row BookingRow) (BookingRow, error) {
	if tx.closed {
		return BookingRow{}, ErrTxClosed
	}
	tx.bookingSeq++
	row.ID = tx.bookingSeq
	tx.pendingBookings = append(tx.pendingBookings, row)
	return row, nil
}

func (tx *writeTx) commit() {
	tx.db.rooms = append(tx.db.rooms, tx.pendingRooms...)
	tx.db.bookings = append(tx.db.bookings, tx.pendingBookings...)
	tx.db.roomSeq = tx.roomSeq
	tx.db.bookingSeq = tx.bookingSeq
}

func findRoom(rows []RoomRow, id int64) (RoomRow, bool) {
	for _, r := range rows {
		if r.ID == id {
			r.Amenities = slices.Clone(r.Amenities)
			return r, true
		}
	}
	return RoomRow{}, false
}

func cloneRooms(rows []RoomRow) []RoomRow {
	out := make([]RoomRow, len(rows))
	for i, r := range rows {
		r.Amenities = slices.Clone(r.Amenities)
		out[i] = r
	}
	return out
}
