package gruber

import "titlecase/log"

var logger = log.Named("gruber")
