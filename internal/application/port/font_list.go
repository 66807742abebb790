package port

import (
	"image"

	"github.com/bnema/fontview/internal/domain/entity"
)

// FontListStore is the ordered, observable font list owned by the UI goroutine.
// All methods must be called from the UI goroutine.
type FontListStore interface {
	// Insert adds a record at its collation position and returns its handle.
	// Inserting a record with the same name and path as an existing row returns
	// the existing handle.
	Insert(rec entity.FontRecord) entity.RecordHandle

	// FindByIdentity returns the first row whose display name equals name.
	FindByIdentity(name string) (entity.RecordHandle, bool)

	// Lookup returns the record for a handle.
	Lookup(h entity.RecordHandle) (entity.FontRecord, bool)

	// SetIcon replaces the icon of a row. Returns false if the row no longer exists.
	SetIcon(h entity.RecordHandle, icon image.Image) bool

	// Clear removes every row.
	Clear()

	// Len returns the number of rows.
	Len() int

	// Records returns a copy of the rows in display order.
	Records() []entity.FontRecord
}
