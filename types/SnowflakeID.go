package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SnowflakeID is rendered as a decimal string in JSON so clients never lose
// precision on 64-bit ids.
type SnowflakeID int64

func ParseSnowflakeID(s string) (SnowflakeID, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake ID %q: %w", s, err)
	}
	return SnowflakeID(val), nil
}

func (s SnowflakeID) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Marshal: int64 → string
func (s SnowflakeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SnowflakeID) UnmarshalJSON(data []byte) error {
	// Coba sebagai string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := ParseSnowflakeID(str)
		if err != nil {
			return err
		}
		*s = val
		return nil
	}

	// Kalau gagal, coba langsung sebagai number
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = SnowflakeID(num)
		return nil
	}

	return fmt.Errorf("invalid snowflake ID format")
}
