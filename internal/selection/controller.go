// Package selection tracks the highlighted row and the scroll window of a list
// whose length and visible height change over time.
//
// Out-of-range positions are clamped, never reported as errors: a selection
// past the end of a list that just shrank is an expected transient.
package selection

// None is the selected index of an empty list.
const None = -1

// Controller owns the selected index and scroll offset of a list.
//
// After every method call the following hold:
//   - an empty list has selected == None and offset == 0
//   - otherwise 0 <= selected < length
//   - offset <= selected <= offset+visible-1 whenever visible > 0
//   - offset <= max(0, length-visible), so no blank rows trail the list
//
// The zero value is not ready for use; call New.
type Controller struct {
	selected int
	offset   int
	visible  int
	length   int
}

// New returns a controller for an empty list and a zero-height viewport.
func New() *Controller {
	return &Controller{selected: None}
}

// Selected returns the selected index, or (None, false) for an empty list.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected != None
}

// Offset returns the index of the first visible row.
func (c *Controller) Offset() int { return c.offset }

// VisibleRows returns the viewport height last passed to Resize.
func (c *Controller) VisibleRows() int { return c.visible }

// Len returns the list length last passed to SetLength.
func (c *Controller) Len() int { return c.length }

// Window returns the half-open range [start, end) of rows to draw.
func (c *Controller) Window() (start, end int) {
	end = min(c.offset+c.visible, c.length)
	return c.offset, max(end, c.offset)
}

// MoveUp selects the previous row, scrolling up just enough to keep it visible.
// It does nothing at the top of the list.
func (c *Controller) MoveUp() {
	if c.selected <= 0 {
		return
	}
	c.selected--
	if c.selected < c.offset {
		c.offset = c.selected
	}
	c.clamp()
}

// MoveDown selects the next row, scrolling down just enough to keep it visible.
// It does nothing at the bottom of the list.
func (c *Controller) MoveDown() {
	if c.selected == None || c.selected >= c.length-1 {
		return
	}
	c.selected++
	if c.visible > 0 && c.selected >= c.offset+c.visible {
		c.offset = c.selected + 1 - c.visible
	}
	c.clamp()
}

// Top selects the first row.
func (c *Controller) Top() {
	if c.selected == None {
		return
	}
	c.selected = 0
	c.clamp()
}

// Bottom selects the last row.
func (c *Controller) Bottom() {
	if c.selected == None {
		return
	}
	c.selected = c.length - 1
	c.clamp()
}

// PageUp moves the selection up by one viewport height.
func (c *Controller) PageUp() {
	if c.selected == None {
		return
	}
	c.selected -= max(c.visible, 1)
	c.clamp()
}

// PageDown moves the selection down by one viewport height.
func (c *Controller) PageDown() {
	if c.selected == None {
		return
	}
	c.selected += max(c.visible, 1)
	c.clamp()
}

// SetLength is called whenever the list is replaced. The selection keeps its
// index when still valid and is clamped to the last row otherwise.
func (c *Controller) SetLength(n int) {
	c.length = max(n, 0)
	if c.length > 0 && c.selected == None {
		c.selected = 0
	}
	c.clamp()
}

// Resize sets the number of rows the viewport can show and rescrolls so the
// selection stays inside it.
func (c *Controller) Resize(rows int) {
	c.visible = max(rows, 0)
	c.clamp()
}

func (c *Controller) clamp() {
	if c.length == 0 {
		c.selected = None
		c.offset = 0
		return
	}

	c.selected = min(max(c.selected, 0), c.length-1)
	c.offset = min(max(c.offset, 0), c.selected)

	if c.visible == 0 {
		return
	}
	if c.selected >= c.offset+c.visible {
		c.offset = c.selected + 1 - c.visible
	}
	c.offset = min(c.offset, max(c.length-c.visible, 0))
}
