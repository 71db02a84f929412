package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Region records the target region under the key "region".
func Region(name string) slog.Attr {
	return slog.String("region", name)
}

// Source records where the secret came from ("argument", "stdin", "aws").
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Profile records the AWS shared config profile under the key "profile".
// If name is empty, it returns an empty Attr.
func Profile(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("profile", name)
}

// AccessKeyID records the access key id under the key "access_key_id".
// Access key ids are identifiers, not secrets; never pass a secret access key here.
func AccessKeyID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("access_key_id", id)
}
