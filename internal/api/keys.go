package api

import (
	"strconv"

	"github.com/vmunix/moviems/internal/media"
)

// Cache keys:
//
//	search:<type>:<query>   query already trimmed
//	movie:<id>
//	tv:<id>

func searchKey(searchType, query string) string {
	return "search:" + searchType + ":" + query
}

func detailKey(t media.Type, id int64) string {
	return string(t) + ":" + strconv.FormatInt(id, 10)
}
