package models

import "errors"

// DomainError is raised by payload constructors. Code has the form ENTITY.REASON.
type DomainError struct {
	Code string
}

func (e *DomainError) Error() string { return e.Code }

func domainErr(entity, reason string) *DomainError {
	return &DomainError{Code: entity + "." + reason}
}

// Reasons shared by every payload constructor.
const (
	ReasonMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	ReasonWrongType       = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

func domainMessage(code string) (string, bool) {
	switch code {
	case "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":
		return "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada", true
	case "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "tidak dapat membuat user baru karena tipe data tidak sesuai", true
	case "REGISTER_USER.USERNAME_LIMIT_CHAR":
		return "tidak dapat membuat user baru karena karakter username melebihi batas limit", true
	case "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER":
		return "tidak dapat membuat user baru karena username mengandung karakter terlarang", true
	case "USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":
		return "harus mengirimkan username dan password", true
	case "USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "username dan password harus string", true
	case "REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN",
		"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":
		return "harus mengirimkan token refresh", true
	case "REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION",
		"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "refresh token harus string", true
	case "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", "THREAD.NOT_CONTAIN_NEEDED_PROPERTY":
		return "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", true
	case "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION", "THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "tidak dapat membuat thread baru karena tipe data tidak sesuai", true
	case "ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":
		return "thread tidak memiliki properti yang dibutuhkan", true
	case "ADDED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "thread memiliki tipe data yang tidak sesuai", true
	case "ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":
		return "tidak dapat menambah komentar karena properti yang dibutuhkan tidak ada", true
	case "ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "tidak dapat menambah komentar karena tipe data tidak sesuai", true
	case "ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":
		return "komentar baru tidak valid karena properti yang dibutuhkan tidak ada", true
	case "ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "komentar baru tidak valid karena tipe data tidak sesuai", true
	case "ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":
		return "tidak dapat menambahkan balasan karena properti yang dibutuhkan tidak ada", true
	case "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "tidak dapat menambahkan balasan karena tipe data tidak sesuai", true
	case "ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":
		return "balasan baru tidak valid karena properti yang dibutuhkan tidak ada", true
	case "ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":
		return "balasan baru tidak valid karena tipe data tidak sesuai", true
	}
	return "", false
}

// TranslateDomainError turns a known DomainError into a VALIDATION_ERROR AppError
// with a user-facing message. Any other error is returned unchanged.
func TranslateDomainError(err error) error {
	var de *DomainError
	if !errors.As(err, &de) {
		return err
	}
	msg, ok := domainMessage(de.Code)
	if !ok {
		return err
	}
	return &AppError{Code: CodeValidation, Message: msg, Err: de}
}
