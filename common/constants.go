package common

import "time"

var StartTime = time.Now().Unix() // unit: second
var Version = "v0.3.1"            // this hard coding will be replaced automatically when building, no need to manually change
