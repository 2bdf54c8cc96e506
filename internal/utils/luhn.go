package utils

// LuhnSum returns the Luhn-weighted digit sum of number. ok is false when
// number is empty or holds anything other than ASCII digits.
func LuhnSum(number string) (sum int, ok bool) {
	if number == "" {
		return 0, false
	}

	isEven := false

	for i := len(number) - 1; i >= 0; i-- {
		if number[i] < '0' || number[i] > '9' {
			return 0, false
		}
		digit := int(number[i] - '0')
		if isEven {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isEven = !isEven
	}

	return sum, true
}

func LuhnCheck(number string) bool {
	sum, ok := LuhnSum(number)
	return ok && sum%10 == 0
}
