package main

import (
	"fmt"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/baxromumarov/parallel"
)

func fetch(id int) string {
	time.Sleep(time.Duration(50+10*id) * time.Millisecond)
	return fmt.Sprintf("payload-%d", id)
}

func main() {
	now := time.Now()

	combined := parallel.Enter(func(s *parallel.Scope) string {
		futures := make([]*parallel.Future[string], 0, 3)
		for id := 0; id < 3; id++ {
			id := id
			futures = append(futures, parallel.Async(s, func() string {
				return fetch(id)
			}))
		}

		first := parallel.WaitAny(futures...)
		first.Subscribe(func(struct{}) {
			fmt.Printf("first result after %v\n", time.Since(now).Round(time.Millisecond))
		})

		parallel.WaitAll(futures...).Wait()

		out := ""
		for _, f := range futures {
			out += f.Wait() + " "
		}
		return out
	})

	fmt.Printf("all results after %v: %s\n", time.Since(now).Round(time.Millisecond), combined)
}
