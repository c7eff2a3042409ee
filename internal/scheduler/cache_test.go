package scheduler

import (
	wbfredis "github.com/wb-go/wbf/redis"
)

// The production wiring hands the wbf redis client straight to New.
var _ cache = (*wbfredis.Client)(nil)
