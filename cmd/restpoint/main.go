package main

import (
	"github.com/go-restpoint/restpoint/internal/cli"
	"github.com/go-restpoint/restpoint/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

func main() {
	cli.Execute()
}
