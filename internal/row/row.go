package row

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Column widths in bytes
const (
	IDSize       = 2
	UsernameSize = 32
	EmailSize    = 255

	Size = IDSize + UsernameSize + EmailSize
)

const (
	idOffset       = 0
	usernameOffset = idOffset + IDSize
	emailOffset    = usernameOffset + UsernameSize
)

// Input is a row as typed by the user, every column still text.
type Input struct {
	ID       string
	Username string
	Email    string
}

// Validate parses the id and checks both text columns fit their width.
// The checks run in column order so the first bad column is the one reported.
func (in Input) Validate() (Validated, error) {
	id, err := strconv.ParseUint(in.ID, 10, 16)
	if err != nil {
		return Validated{}, &ValidationError{
			Field: "id",
			Msg:   fmt.Sprintf("failed while parsing id (%s)", parseReason(err)),
			Err:   err,
		}
	}

	if len(in.Username) > UsernameSize {
		return Validated{}, &ValidationError{Field: "username", Msg: "username too long"}
	}
	if len(in.Email) > EmailSize {
		return Validated{}, &ValidationError{Field: "email", Msg: "email too long"}
	}

	v := Validated{id: uint16(id)}
	copy(v.username[:], in.Username)
	copy(v.email[:], in.Email)
	return v, nil
}

func (in Input) String() string {
	return strings.Join([]string{in.ID, in.Username, in.Email}, ",")
}

// strconv wraps its message with the function name and the input, keep only the reason
func parseReason(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err.Error()
	}
	return err.Error()
}

// Validated is the fixed width form of a row, the only form stored in a page.
type Validated struct {
	id       uint16
	username [UsernameSize]byte
	email    [EmailSize]byte
}

func (v Validated) ID() uint16 {
	return v.id
}

// Key is the cell key the row is stored under.
func (v Validated) Key() uint64 {
	return uint64(v.id)
}

// Write encodes the row into buf, which must hold at least Size bytes.
func (v Validated) Write(buf []byte) {
	_ = buf[Size-1]
	binary.BigEndian.PutUint16(buf[idOffset:usernameOffset], v.id)
	copy(buf[usernameOffset:emailOffset], v.username[:])
	copy(buf[emailOffset:Size], v.email[:])
}

// Read decodes a row previously encoded with Write.
func Read(buf []byte) Validated {
	_ = buf[Size-1]
	var v Validated
	v.id = binary.BigEndian.Uint16(buf[idOffset:usernameOffset])
	copy(v.username[:], buf[usernameOffset:emailOffset])
	copy(v.email[:], buf[emailOffset:Size])
	return v
}

// Input converts back to text, cutting each column at its first zero byte.
func (v Validated) Input() Input {
	return Input{
		ID:       strconv.FormatUint(uint64(v.id), 10),
		Username: fixedString(v.username[:]),
		Email:    fixedString(v.email[:]),
	}
}

func (v Validated) String() string {
	return v.Input().String()
}

func fixedString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "�")
}
