// Package repository implements the store adapters over pgx with
// hand-written SQL. Write methods that participate in a dual-write take the
// transaction handle explicitly; everything else runs on the pool.
package repository

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}
