/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

// Package codec converts between dotted-quad IPv4 text and its 32-bit
// unsigned integer value.
package codec

import (
	`strconv`
	`strings`
)

const (
	MaxInteger = 1<<32 - 1

	octetCount = 4
	separator  = "."
)

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseOctet accepts leading zeros, "010" is 10.
func parseOctet(s string) (uint32, bool) {
	if !isDigits(s) {
		return 0, false
	}
	s = strings.TrimLeft(s, "0")
	if len(s) == 0 {
		return 0, true
	}
	if len(s) > 3 {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > 255 {
		return 0, false
	}
	return uint32(v), true
}

// Octets returns the four raw dotted segments of the trimmed text without
// checking them.
func Octets(text string) ([]string, bool) {
	parts := strings.Split(strings.TrimSpace(text), separator)
	if len(parts) != octetCount {
		return nil, false
	}
	return parts, true
}

// AddressToInteger packs the four octets big-endian, octet 0 is the most
// significant byte.
func AddressToInteger(text string) (uint32, error) {
	parts, ok := Octets(text)
	if !ok {
		return 0, ErrInvalidFormat
	}

	var v uint32
	for _, p := range parts {
		o, ok := parseOctet(p)
		if !ok {
			return 0, ErrInvalidFormat
		}
		v = v<<8 | o
	}
	return v, nil
}

func IntegerToAddress(value int64) (string, error) {
	if value < 0 || value > MaxInteger {
		return "", ErrOutOfRange
	}

	u := uint32(value)
	var b strings.Builder
	b.Grow(15)
	for i := octetCount - 1; i >= 0; i-- {
		b.WriteString(strconv.FormatUint(uint64(u>>(8*uint(i))&0xff), 10))
		if i > 0 {
			b.WriteString(separator)
		}
	}
	return b.String(), nil
}

// ParseInteger reads the raw text of a reverse conversion. Text that is not a
// decimal number is ErrInvalidFormat, a number outside the IPv4 range is
// ErrOutOfRange.
func ParseInteger(text string) (int64, error) {
	s := strings.TrimSpace(text)
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || !isDigits(digits) {
		return 0, ErrInvalidFormat
	}

	negative := s[0] == '-'
	digits = strings.TrimLeft(digits, "0")
	if len(digits) == 0 {
		return 0, nil
	}
	if len(digits) > 10 {
		return 0, ErrOutOfRange
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	if negative {
		v = -v
	}
	if v < 0 || v > MaxInteger {
		return 0, ErrOutOfRange
	}
	return v, nil
}

func Normalize(text string) (string, error) {
	v, err := AddressToInteger(text)
	if err != nil {
		return "", err
	}
	return IntegerToAddress(int64(v))
}
