package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopoSort_Order(t *testing.T) {
	order, cycle := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})

	assert.Nil(t, cycle)
	assert.Equal(t, []int{2, 0, 1}, order)
}

func TestTopoSort_KeepsOrderWhenFree(t *testing.T) {
	order, cycle := topoSort(4, func(int) []int { return nil })

	assert.Nil(t, cycle)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	order, cycle := topoSort(3, func(i int) []int {
		switch i {
		case 1:
			return []int{2}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})

	assert.Nil(t, order)
	assert.Equal(t, []int{1, 2}, cycle)
}

func TestTopoSort_Empty(t *testing.T) {
	order, cycle := topoSort(0, nil)

	assert.Empty(t, order)
	assert.Nil(t, cycle)
}
