// Package utils provides identifier validation and quoting shared by the
// database client and the cluster manager.
package utils
