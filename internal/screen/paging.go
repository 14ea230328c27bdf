package screen

// Гриды листают уже загруженную коллекцию целиком, сервер о страницах не знает.

var PageSizes = []int{5, 10}

const DefaultPageSize = 5

type Page[T any] struct {
	Rows   []T `json:"rows"`
	Number int `json:"page"`
	Size   int `json:"pageSize"`
	Pages  int `json:"pages"`
	Total  int `json:"total"`
}

func (p Page[T]) HasPrev() bool { return p.Number > 0 }
func (p Page[T]) HasNext() bool { return p.Number+1 < p.Pages }
func (p Page[T]) Prev() int     { return p.Number - 1 }
func (p Page[T]) Next() int     { return p.Number + 1 }

// Paginate slices rows client-side. Page numbers are zero-based and clamped;
// an unsupported size falls back to DefaultPageSize.
func Paginate[T any](rows []T, number, size int) Page[T] {
	if !validPageSize(size) {
		size = DefaultPageSize
	}

	total := len(rows)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}

	if number < 0 {
		number = 0
	}
	if number >= pages {
		number = pages - 1
	}

	from := number * size
	to := min(from+size, total)
	from = min(from, total)

	return Page[T]{
		Rows:   rows[from:to],
		Number: number,
		Size:   size,
		Pages:  pages,
		Total:  total,
	}
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
