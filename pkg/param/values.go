package param

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RangeError is returned when a bounded value is constructed outside its
// bounds. The value is rejected, never clamped.
type RangeError struct {
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %v is outside [%v, %v]", e.Value, e.Min, e.Max)
}

// Percentage is a fraction in [0, 1].
type Percentage struct {
	value float32
}

// NewPercentage validates v. NaN is out of range.
func NewPercentage(v float32) (Percentage, error) {
	if !(v >= 0 && v <= 1) {
		return Percentage{}, &RangeError{Value: float64(v), Min: 0, Max: 1}
	}
	return Percentage{value: v}, nil
}

func (p Percentage) Value() float32 { return p.value }

func (p Percentage) String() string {
	return strconv.FormatFloat(float64(p.value), 'f', -1, 32)
}

func (p *Percentage) Set(text string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return fmt.Errorf("percentage %q: %w", text, err)
	}
	np, err := NewPercentage(float32(f))
	if err != nil {
		return err
	}
	*p = np
	return nil
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	var f float32
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	np, err := NewPercentage(f)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// Xyz is an integer block vector, rendered "x,y,z".
type Xyz struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

func (v Xyz) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

func (v *Xyz) Set(text string) error {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return fmt.Errorf("vector %q: want x,y,z", text)
	}
	var out [3]int32
	for i, s := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return fmt.Errorf("vector %q: %w", text, err)
		}
		out[i] = int32(n)
	}
	*v = Xyz{X: out[0], Y: out[1], Z: out[2]}
	return nil
}

// TradeIngredient is an item and a stack count, rendered "<name> <count>".
type TradeIngredient struct {
	Name  string `json:"name"`
	Count uint8  `json:"count"`
}

func (t TradeIngredient) String() string {
	return t.Name + " " + strconv.FormatUint(uint64(t.Count), 10)
}

// Set parses "<name> <count>". Text with no count sets the name and a count
// of zero.
func (t *TradeIngredient) Set(text string) error {
	text = strings.TrimSpace(text)
	i := strings.LastIndexByte(text, ' ')
	if i < 0 {
		*t = TradeIngredient{Name: text}
		return nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(text[i+1:]), 10, 8)
	if err != nil {
		return fmt.Errorf("ingredient %q: %w", text, err)
	}
	*t = TradeIngredient{Name: strings.TrimSpace(text[:i]), Count: uint8(n)}
	return nil
}

// ArmorStandPose holds Euler angles for the six posable parts.
type ArmorStandPose struct {
	Head     [3]float32 `json:"head"`
	Body     [3]float32 `json:"body"`
	LeftArm  [3]float32 `json:"left_arm"`
	RightArm [3]float32 `json:"right_arm"`
	LeftLeg  [3]float32 `json:"left_leg"`
	RightLeg [3]float32 `json:"right_leg"`
}

func (p *ArmorStandPose) parts() [6]*[3]float32 {
	return [6]*[3]float32{&p.Head, &p.Body, &p.LeftArm, &p.RightArm, &p.LeftLeg, &p.RightLeg}
}

// String renders all eighteen components in part order, each with exactly
// one decimal place.
func (p ArmorStandPose) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, part := range p.parts() {
		for j, c := range part {
			if i > 0 || j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(float64(c), 'f', 1, 32))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Set parses eighteen comma separated numbers, with or without brackets.
func (p *ArmorStandPose) Set(text string) error {
	text = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(text), "["), "]")
	fields := strings.Split(text, ",")
	if len(fields) != 18 {
		return fmt.Errorf("pose: want 18 components, got %d", len(fields))
	}
	var np ArmorStandPose
	for i, part := range np.parts() {
		for j := range part {
			f, err := strconv.ParseFloat(strings.TrimSpace(fields[i*3+j]), 32)
			if err != nil {
				return fmt.Errorf("pose component %d: %w", i*3+j, err)
			}
			part[j] = float32(f)
		}
	}
	*p = np
	return nil
}

// ItemArray is a list of item or drop table names, rendered comma separated.
type ItemArray []string

func (a ItemArray) String() string { return strings.Join(a, ",") }

func (a *ItemArray) Set(text string) error {
	*a = splitList(text, ",")
	return nil
}

// Tags is a list of damage tags, rendered comma separated.
type Tags []string

func (t Tags) String() string { return strings.Join(t, ",") }

func (t *Tags) Set(text string) error {
	*t = splitList(text, ",")
	return nil
}

// RandomMessages renders each message quoted, comma separated.
type RandomMessages []string

func (m RandomMessages) String() string {
	quoted := make([]string, len(m))
	for i, s := range m {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, ",")
}

// Set splits on "|" because messages may contain commas.
func (m *RandomMessages) Set(text string) error {
	*m = splitList(text, "|")
	return nil
}

func splitList(text, sep string) []string {
	var out []string
	for _, s := range strings.Split(text, sep) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// EquipmentItem is an item and the slot it is equipped to, rendered
// "<item> <SLOT>".
type EquipmentItem struct {
	Item string        `json:"item"`
	Slot EquipmentSlot `json:"slot"`
}

func (e EquipmentItem) String() string {
	return e.Item + " " + e.Slot.String()
}

func (e *EquipmentItem) Set(text string) error {
	text = strings.TrimSpace(text)
	i := strings.LastIndexByte(text, ' ')
	if i < 0 {
		*e = EquipmentItem{Item: text}
		return nil
	}
	var slot EquipmentSlot
	if err := slot.Set(text[i+1:]); err != nil {
		return err
	}
	*e = EquipmentItem{Item: strings.TrimSpace(text[:i]), Slot: slot}
	return nil
}

// SpawnerSelect references one spawner, a spawner group, or every spawner
// whose name starts with a prefix.
type SpawnerSelect struct {
	Mode SpawnerMode `json:"mode"`
	Name string      `json:"name"`
}

// SpawnerName references a single spawner.
func SpawnerName(name string) SpawnerSelect {
	return SpawnerSelect{Mode: SpawnerByName, Name: name}
}

// SpawnerGroup references every spawner in a group.
func SpawnerGroup(name string) SpawnerSelect {
	return SpawnerSelect{Mode: SpawnerByGroup, Name: name}
}

// SpawnerIncrement references every spawner whose name starts with name.
func SpawnerIncrement(name string) SpawnerSelect {
	return SpawnerSelect{Mode: SpawnerByIncrement, Name: name}
}

func (s SpawnerSelect) String() string {
	switch s.Mode {
	case SpawnerByGroup:
		return "g:" + s.Name
	case SpawnerByIncrement:
		return s.Name + "*"
	default:
		return s.Name
	}
}

// Set parses the rendered form: "g:<group>", "<prefix>*" or "<name>".
func (s *SpawnerSelect) Set(text string) error {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "g:"):
		*s = SpawnerGroup(strings.TrimPrefix(text, "g:"))
	case strings.HasSuffix(text, "*"):
		*s = SpawnerIncrement(strings.TrimSuffix(text, "*"))
	default:
		*s = SpawnerName(text)
	}
	return nil
}

// DurationReduction is ticks removed from a cloud's duration each time it
// applies its effect.
type DurationReduction uint32

// RadiusReduction is blocks removed from a cloud's radius on use or per tick.
type RadiusReduction uint32
