package storage

const (
	PageSize = 4096
	MaxPages = 100
)

type Page struct {
	Index int
	Data  []byte
}

// NewPage returns a zero-filled page.
func NewPage(index int) *Page {
	return &Page{
		Index: index,
		Data:  make([]byte, PageSize),
	}
}

func pageOffset(index int) int64 {
	return int64(index) * PageSize
}
