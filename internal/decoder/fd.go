package decoder

import "golang.org/x/sys/unix"

// closeFd closes a raw DMA-BUF file descriptor, retrying on EINTR like
// every other syscall wrapper in this module.
func closeFd(fd int) error {
	for {
		err := unix.Close(fd)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}
