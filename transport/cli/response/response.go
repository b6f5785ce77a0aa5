package response

import (
	"encoding/json"
	"io"

	"hotelsys/shared/constant"
	"hotelsys/shared/failure"
	"hotelsys/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string       `json:"error,omitempty"`
	Code  *failure.Kind `json:"code,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage writes a simple text message.
func WithMessage(writer io.Writer, message string) {
	response(writer, Message{Message: &message})
}

// WithJSON writes a JSON object wrapped in a data envelope.
func WithJSON(writer io.Writer, jsonPayload any) {
	response(writer, Data[any]{Data: &jsonPayload})
}

// WithError writes the error message together with its failure kind.
func WithError(writer io.Writer, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, Error{Error: &errMsg, Code: &code})
}

// WithLine writes payload as a single compact JSON line.
func WithLine(writer io.Writer, payload any) {
	line, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	if _, err = writer.Write(append(line, '\n')); err != nil {
		logger.ErrorWithStack(err)
	}
}

func response(writer io.Writer, payload any) {
	response, err := json.MarshalIndent(payload, "", constant.JSONIndent)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	_, err = writer.Write(append(response, '\n'))
	if err != nil {
		logger.ErrorWithStack(err)
	}
}
