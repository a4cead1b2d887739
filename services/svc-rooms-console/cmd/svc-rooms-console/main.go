package main

import "github.com/architeacher/rooms-console/services/svc-rooms-console/internal/runtime"

func main() {
	runtime.New().Run()
}
