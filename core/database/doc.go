// Package database opens the content database (MySQL through GORM) and
// inspects its schema.
//
// MissingColumns lets the record store fail early when the elements tables
// lack a column it reads, instead of failing on the first comparison.
package database
