//go:build debugNargs
// +build debugNargs

package nargs

import (
	"log"
)

func debugf(fmt string, args ...interface{}) {
	log.Printf("nargs: "+fmt, args...)
}

func debug(args ...interface{}) {
	log.Println(append([]interface{}{"nargs:"}, args...)...)
}
