package main

import (
	"os"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/log"
)

func init() {
	log.Configure(os.Stderr)
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		rootCause, errorType := cerrors.GetRootCauseAndErrorCode(err)
		log.Errorf("[Error]: %v, errorType: %v", rootCause, errorType)
		log.Debugf("%+v", err)
		os.Exit(1)
	}
}
