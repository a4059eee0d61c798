package netif

import "fmt"

// InterfaceQueryError reports that the OS could not describe an interface,
// typically because it does not exist or the caller lacks permission.
type InterfaceQueryError struct {
	Name string
	Err  error
}

func (e *InterfaceQueryError) Error() string {
	return fmt.Sprintf("cannot query interface %s: %v", e.Name, e.Err)
}

func (e *InterfaceQueryError) Unwrap() error { return e.Err }

// AddressNotFoundError reports an interface with no link/ether address,
// such as loopback or a tunnel device.
type AddressNotFoundError struct {
	Name string
}

func (e *AddressNotFoundError) Error() string {
	return fmt.Sprintf("no MAC address found for interface %s", e.Name)
}
