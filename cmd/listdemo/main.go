// Command listdemo builds a small list, inserts into the middle of it and
// prints it in both directions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"go.expect.digital/container/list"
)

func main() {
	if lvl, ok := os.LookupEnv("LISTDEMO_LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
			os.Exit(1)
		}

		logrus.SetLevel(level)
	}

	run(os.Stdout, logrus.WithField("cmd", "listdemo"))
}

func run(w io.Writer, log *logrus.Entry) {
	l := list.New[int]()
	log.WithField("empty", l.Empty()).Debug("created list")

	l.PushBack(4)
	log.WithField("empty", l.Empty()).Debug("pushed 4")

	l.PushBack(2)

	l.Insert(l.ConstBegin(), 3)
	log.WithFields(logrus.Fields{
		"len":   l.Len(),
		"front": l.Front(),
		"back":  l.Back(),
	}).Info("inserted 3 at the front")

	for it := l.ConstBegin(); it != l.ConstEnd(); it = it.Next() {
		fmt.Fprintln(w, it.Value())
	}

	l.Reverse()
	log.Debug("reversed")

	for v := range l.Backward() {
		fmt.Fprintln(w, v)
	}
}
