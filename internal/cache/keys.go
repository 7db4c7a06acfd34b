package cache

import "fmt"

// UserKey is the cache key of a user projection
func UserKey(id uint) string { return fmt.Sprintf("user:%d", id) }

// CategoryKey is the cache key of a category projection
func CategoryKey(id uint) string { return fmt.Sprintf("category:%d", id) }

// ProductKey is the cache key of a product projection
func ProductKey(id uint) string { return fmt.Sprintf("product:%d", id) }
