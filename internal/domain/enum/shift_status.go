package enum

import "encoding/json"

// ShiftStatus represents the lifecycle state of a register shift
type ShiftStatus int

const (
	ShiftStatusOpen   ShiftStatus = 0
	ShiftStatusClosed ShiftStatus = 1
)

func (s ShiftStatus) String() string {
	names := [...]string{"Open", "Closed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Open"
	}
	return names[s]
}

func (s ShiftStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ShiftStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ShiftStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = ShiftStatusOpen
	case "Closed":
		*s = ShiftStatusClosed
	}
	return nil
}
