package model

// DeriveCurrentOffer scans the message stream for the priced message with the
// highest sequence number and returns its price. The offer is never stored
// independently of its originating message, so replaying the log always
// reproduces it. ok is false when no priced message has been committed yet.
func DeriveCurrentOffer(messages []*Message) (price float64, ok bool) {
	var bestSeq int64 = -1
	for _, m := range messages {
		if m.PriceReference == nil {
			continue
		}
		if m.SequenceNumber > bestSeq {
			bestSeq = m.SequenceNumber
			price = m.PriceReference.Price
		}
	}
	return price, bestSeq >= 0
}
