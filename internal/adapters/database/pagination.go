package database

// pageSize items per feed page
const pageSize = 10

// clampPage standard paginator semantics: pages are 1-based and an
// out-of-range request lands on the nearest valid page. An empty result set
// still has one (empty) page.
func clampPage(page int, total int64, size int) (number, totalPages int) {
	totalPages = int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
