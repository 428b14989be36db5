// Package aggregates defines the catalog's write contracts and the coded error
// type every layer uses to report failures.
//
// Contracts carry no persistence details; data/aggregates implements them on
// top of gorm.
package aggregates
