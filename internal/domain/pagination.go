package domain

// Page holds offset/limit pagination parameters as received on the wire.
type Page struct {
	From int
	Size int
}

// Number converts From/Size to a page number as from / size (integer
// division). This matches the upstream paging collaborator: it is a true
// offset only when From is an exact multiple of Size.
func (p Page) Number() int {
	if p.Size < 1 {
		return 0
	}
	return p.From / p.Size
}

// Offset returns the row offset of the page computed by Number.
func (p Page) Offset() int {
	return p.Number() * p.Size
}

// Limit returns the page size.
func (p Page) Limit() int {
	return p.Size
}
