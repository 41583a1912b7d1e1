package ecs

import "strconv"

// Entity is a registry handle. The zero value is not a valid entity.
type Entity uint32

func (e Entity) index() int {
	return int(e) - 1
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
