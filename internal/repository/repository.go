// Package repository handles all interactions with the database.
//
// It contains the MongoDB queries used to fetch, persist, update and delete
// employee documents, keeping driver details away from the service layer.
// Driver errors are classified with mongoerr and wrapped with a stack.
package repository
