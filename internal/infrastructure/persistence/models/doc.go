// Package models contains GORM persistence models and their mappings
// to and from the domain aggregates. Domain types never carry
// persistence concerns beyond the column tags on embedded bases.
package models
