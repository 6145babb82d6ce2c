// Package utils provides small display-formatting helpers shared by the
// presentation commands.
package utils
