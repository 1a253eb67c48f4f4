/*
	Copyright 2026 The ringchart Authors
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package ringchart

import (
	"crypto/rand"
	"fmt"
)

const (
	lowercaseAlphanumericChars = "abcdefghijklmnopqrstuvwxyz1234567890"
	// idLength is the length of generated chart IDs.
	idLength = 8
)

// newID returns a random string of the specified length using only
// lowercase alphanumeric characters.
func newID(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Errorf("rand error: %w", err))
	}
	for i := range b {
		b[i] = lowercaseAlphanumericChars[int(b[i])%len(lowercaseAlphanumericChars)]
	}
	return string(b)
}
