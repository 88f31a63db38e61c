// Package nlog is a minimal leveled logger. It exists so that the rest of
// the module never imports "log" directly, and so verbosity can be raised
// at runtime without recompiling.
package nlog

import (
	"log"
	"os"
	"sync/atomic"
)

var (
	std  = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	verb int32
)

// SetVerbosity sets the global verbosity threshold consulted by V.
func SetVerbosity(level int) { atomic.StoreInt32(&verb, int32(level)) }

// V reports whether logging at the given level is currently enabled.
// Callers use it to skip building an expensive log line:
//
//	if nlog.V(5) { nlog.Infof("expensive: %s", describe(x)) }
func V(level int) bool { return atomic.LoadInt32(&verb) >= int32(level) }

func Infoln(args ...any)            { std.Println(append([]any{"I:"}, args...)...) }
func Infof(f string, args ...any)   { std.Printf("I: "+f+"\n", args...) }
func Errorln(args ...any)           { std.Println(append([]any{"E:"}, args...)...) }
func Errorf(f string, args ...any)  { std.Printf("E: "+f+"\n", args...) }
func Warningln(args ...any)         { std.Println(append([]any{"W:"}, args...)...) }
func Warningf(f string, args ...any) { std.Printf("W: "+f+"\n", args...) }
