// Package linuxproc provides the Linux process enumerator, built from the
// /proc filesystem. It registers itself as the platform provider on Linux;
// the accessibility backend, input, and capture capabilities are left nil
// until a desktop-environment bridge supplies them.
package linuxproc
