package ratingchain

// FindMiddle returns the middle record using a slow and a fast cursor: the
// fast one advances two links per step, the slow one a single link, so the
// slow cursor sits in the middle once the fast one runs off the end.
//
// For an even length the upper middle is returned, i.e. the record at
// 0-based index Len()/2 (the 3rd of 4). It returns nil for an empty chain.
func (c *Chain) FindMiddle() *Record {
	slow, fast := c.head, c.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// Median returns the rating of the middle record (see FindMiddle).
// ok is false for an empty chain.
func (c *Chain) Median() (value float64, ok bool) {
	m := c.FindMiddle()
	if m == nil {
		return 0, false
	}
	return m.value, true
}
