package cart

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func testProduct(price float64) *models.Product {
	return &models.Product{
		ID:      uuid.Must(uuid.NewV7()),
		TitleEn: fmt.Sprintf("Product %.2f", price),
		Price:   price,
		Stock:   100,
	}
}

func strptr(s string) *string { return &s }

// expectedTotal folds price × quantity the same way the cart does.
func expectedTotal(c *Cart) float64 {
	total := decimal.Zero
	for _, line := range c.Lines() {
		price := decimal.NewFromFloat(line.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2).InexactFloat64()
}

func TestAddItemComputesTotal(t *testing.T) {
	c := New()
	productA := testProduct(29.99)

	c.AddItem(productA, 1, nil)
	assert.Equal(t, 29.99, c.Total())
	assert.Equal(t, 1, c.ItemCount())

	// same product, same size: quantity merges into the existing line
	c.AddItem(productA, 2, nil)
	assert.Equal(t, 89.97, c.Total())
	assert.Equal(t, 3, c.ItemCount())
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 3, c.Lines()[0].Quantity)

	c.RemoveItem(c.Lines()[0].ID)
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
}

func TestAddItemDistinctSizesGetDistinctLines(t *testing.T) {
	c := New()
	// stable line ids need distinct timestamps inside the test's millisecond
	ts := time.Now()
	c.now = func() time.Time { ts = ts.Add(time.Millisecond); return ts }

	product := testProduct(49.50)
	c.AddItem(product, 1, strptr("M"))
	c.AddItem(product, 1, strptr("L"))
	c.AddItem(product, 1, strptr("M"))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
}

func TestNilAndEmptySizeShareALine(t *testing.T) {
	c := New()
	product := testProduct(10)

	c.AddItem(product, 1, nil)
	c.AddItem(product, 1, strptr(""))

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	c := New()
	line := c.AddItem(testProduct(15.25), 2, nil)

	c.SetQuantity(line.ID, 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	assert.Equal(t, 76.25, c.Total())

	// zero removes the line rather than keeping a zero-quantity entry
	before := c.ItemCount()
	c.SetQuantity(line.ID, 0)
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 5, before)
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	c := New()
	line := c.AddItem(testProduct(5), 1, nil)
	c.SetQuantity(line.ID, -3)
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Total())
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.AddItem(testProduct(12.34), 2, nil)

	c.RemoveItem("no-such-line")
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 24.68, c.Total())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(testProduct(10), 3, nil)
	c.AddItem(testProduct(20), 1, strptr("S"))

	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
}

// Total must equal the fold over lines after any sequence of mutations.
func TestTotalInvariantUnderMutationSequences(t *testing.T) {
	c := New()
	products := []*models.Product{testProduct(29.99), testProduct(9.99), testProduct(123.45)}

	var lineIDs []string
	for i := 0; i < 30; i++ {
		switch i % 4 {
		case 0:
			line := c.AddItem(products[i%3], i%5+1, nil)
			lineIDs = append(lineIDs, line.ID)
		case 1:
			line := c.AddItem(products[(i+1)%3], 1, strptr("M"))
			lineIDs = append(lineIDs, line.ID)
		case 2:
			if len(lineIDs) > 0 {
				c.SetQuantity(lineIDs[i%len(lineIDs)], i%7)
			}
		case 3:
			if len(lineIDs) > 0 {
				c.RemoveItem(lineIDs[i%len(lineIDs)])
			}
		}
		assert.Equal(t, expectedTotal(c), c.Total(), "total diverged from fold after step %d", i)
	}
}

func TestPanelFlagIndependentOfLines(t *testing.T) {
	c := New()
	c.AddItem(testProduct(10), 1, nil)
	total := c.Total()

	assert.True(t, c.TogglePanel())
	assert.True(t, c.PanelOpen())
	assert.False(t, c.TogglePanel())

	c.OpenPanel()
	assert.True(t, c.PanelOpen())
	c.ClosePanel()
	assert.False(t, c.PanelOpen())

	assert.Equal(t, total, c.Total())
	assert.Len(t, c.Lines(), 1)
}

func TestSnapshotConsistency(t *testing.T) {
	c := New()
	c.AddItem(testProduct(19.99), 2, nil)
	c.OpenPanel()

	snap := c.Snapshot()
	assert.Equal(t, 39.98, snap.Total)
	assert.Equal(t, 2, snap.ItemCount)
	assert.True(t, snap.IsOpen)
	assert.Len(t, snap.Items, 1)
}

func TestStorePerSessionIsolation(t *testing.T) {
	s := NewStore()

	a := s.Get("session-a")
	b := s.Get("session-b")
	require.NotSame(t, a, b)

	a.AddItem(testProduct(10), 1, nil)
	assert.Equal(t, 0, b.ItemCount())

	// same session id returns the same cart
	assert.Same(t, a, s.Get("session-a"))

	s.Drop("session-a")
	assert.NotSame(t, a, s.Get("session-a"))
}

func TestStoreSweep(t *testing.T) {
	s := NewStore()
	s.maxIdle = time.Millisecond

	s.Get("stale")
	time.Sleep(5 * time.Millisecond)
	s.Get("fresh")

	removed := s.Sweep()
	assert.Equal(t, 1, removed)
	assert.Len(t, s.carts, 1)
}
