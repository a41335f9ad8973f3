package helper

import "court_manager/utils"

// DateChangeSurcharge is the fixed penalty added to a rental's price every
// time its date is rescheduled.
const DateChangeSurcharge = 50.0

// FinalPrice derives the price to persist on a rental update. The surcharge
// applies to the currently stored price, not a re-derived base, so repeated
// reschedules accumulate: moving the date away and back costs two surcharges.
func FinalPrice(storedPrice float64, storedDate, newDate utils.DateOnly) float64 {
	if !storedDate.Equal(newDate) {
		return storedPrice + DateChangeSurcharge
	}
	return storedPrice
}
