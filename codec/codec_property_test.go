/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package codec

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genAddress generates a valid dotted quad, octets optionally zero padded.
func genAddress() gopter.Gen {
	octet := gopter.CombineGens(gen.IntRange(0, 255), gen.IntRange(0, 2)).Map(func(v []interface{}) string {
		return strings.Repeat("0", v[1].(int)) + strconv.Itoa(v[0].(int))
	})
	return gen.SliceOfN(4, octet).Map(func(parts []string) string {
		return strings.Join(parts, ".")
	})
}

func TestIntegerRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("AddressToInteger(IntegerToAddress(n)) == n", prop.ForAll(
		func(n uint32) bool {
			s, err := IntegerToAddress(int64(n))
			if err != nil {
				return false
			}
			v, err := AddressToInteger(s)
			return err == nil && v == n
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestAddressRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("IntegerToAddress(AddressToInteger(s)) == normalize(s)", prop.ForAll(
		func(s string) bool {
			v, err := AddressToInteger(s)
			if err != nil {
				return false
			}
			out, err := IntegerToAddress(int64(v))
			if err != nil {
				return false
			}

			parts := strings.Split(s, ".")
			for i, p := range parts {
				n, _ := strconv.Atoi(p)
				parts[i] = strconv.Itoa(n)
			}
			return out == strings.Join(parts, ".")
		},
		genAddress(),
	))

	properties.Property("out of range integers are rejected", prop.ForAll(
		func(n int64) bool {
			_, err := IntegerToAddress(n)
			return err == ErrOutOfRange
		},
		gen.OneGenOf(gen.Int64Range(-1<<40, -1), gen.Int64Range(MaxInteger+1, 1<<40)),
	))

	properties.TestingRun(t)
}
