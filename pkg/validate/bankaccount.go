package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const minAccountLength = 10

// IsBankAccount checks the payout destination: card-style numeric accounts
// must carry a valid Luhn checksum.
func IsBankAccount(s string) bool {
	if len(s) < minAccountLength {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
