package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// PaginatedResponse is the standard shape of every paginated listing.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	TotalRows   int64       `json:"totalRows"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	PageSize    int         `json:"pageSize"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// paginateStudents slices an already filtered roster according to the "page"
// and "pageSize" query parameters. The store is in memory, so windowing the
// slice replaces the usual offset/limit query.
func paginateStudents(c *gin.Context, students []models.Student) PaginatedResponse {
	page, pageSize := pageParams(c)
	total := int64(len(students))

	start := (page - 1) * pageSize
	if start > len(students) {
		start = len(students)
	}
	end := start + pageSize
	if end > len(students) {
		end = len(students)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return PaginatedResponse{
		Data:        students[start:end],
		TotalRows:   total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
