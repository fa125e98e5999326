package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Largest multiple of len(alphanumeric) fitting in a byte, used to reject
// biased samples.
const maxUnbiasedByte = 256 - (256 % len(alphanumeric))

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// RandomString returns a string of the given length drawn uniformly from [A-Za-z0-9].
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	result := make([]byte, 0, length)
	buff := make([]byte, length)

	for len(result) < length {
		if _, err := rand.Read(buff); err != nil {
			return "", errors.WithStack(err)
		}

		for _, b := range buff {
			if int(b) >= maxUnbiasedByte {
				continue
			}

			result = append(result, alphanumeric[int(b)%len(alphanumeric)])
			if len(result) == length {
				break
			}
		}
	}

	return string(result), nil
}
