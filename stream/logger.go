package stream

import "titlecase/log"

var logger = log.Named("stream")
