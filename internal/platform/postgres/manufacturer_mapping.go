package postgres

import (
	"database/sql"

	"github.com/phrazzld/manufacturer-store/internal/domain"
)

// manufacturerRow is the scan target for one row of the manufacturers table.
// Name and country are nullable at the SQL level even though the migration
// forbids NULL; a NULL maps to the empty string.
type manufacturerRow struct {
	ID      int64
	Name    sql.NullString
	Country sql.NullString
}

// targets returns one scan destination per result column, matched by column
// name. Columns the record does not carry (is_deleted, or anything added to
// the table later) are scanned into a discard value.
func (r *manufacturerRow) targets(columns []string) []any {
	dest := make([]any, len(columns))
	for i, column := range columns {
		switch column {
		case "id":
			dest[i] = &r.ID
		case "name":
			dest[i] = &r.Name
		case "country":
			dest[i] = &r.Country
		default:
			dest[i] = new(any)
		}
	}
	return dest
}

func (r *manufacturerRow) toDomain() *domain.Manufacturer {
	return &domain.Manufacturer{
		ID:      r.ID,
		Name:    r.Name.String,
		Country: r.Country.String,
	}
}
