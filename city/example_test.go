package city_test

import (
	"fmt"
	"log"

	"github.com/skylinegame/skyline/city"
)

// ExampleCity_Neighbors shows how adjacency shrinks at the border of the grid.
func ExampleCity_Neighbors() {
	c, err := city.New(3, 3)
	if err != nil {
		log.Fatal(err)
	}

	corner, _ := c.Neighbors(0, 0)
	interior, _ := c.Neighbors(1, 1)

	fmt.Println("corner neighbors:", len(corner))
	fmt.Println("interior neighbors:", len(interior))
	// Output:
	// corner neighbors: 2
	// interior neighbors: 4
}
