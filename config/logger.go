package config

import "titlecase/log"

var logger = log.Named("config")
