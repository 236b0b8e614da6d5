package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress - адрес прослушивания в форме host:port. Хост может быть пустым.
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set разбирает адрес из флага или переменной окружения
func (a *NetworkAddress) Set(value string) error {
	host, rawPort, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", value, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port %d is out of range", port)
	}

	a.Host, a.Port = host, port
	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
