package cli

import "titlecase/log"

var logger = log.Named("cli")
