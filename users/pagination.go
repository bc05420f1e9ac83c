package users

import (
	"fmt"
	"regexp"
	"strconv"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

const defaultPageSize = 10

// ParsePage normalizes 1-indexed page and page size query values.
func ParsePage(pageStr, sizeStr string) (page, size int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(sizeStr)
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}

// BuildFilter combines a case-insensitive substring match over name/email
// with an exact role filter. Both optional, ANDed when both present.
func BuildFilter(search, role string) (bson.M, error) {
	filter := bson.M{}
	if search != "" {
		pattern := regexp.QuoteMeta(search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"email": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if role != "" {
		parsed, ok := models.ParseRole(role)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", role)
		}
		filter["role"] = parsed
	}
	return filter, nil
}

// TotalPages is ceil(total / size).
func TotalPages(total int64, size int) int64 {
	if size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}
