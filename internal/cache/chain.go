package cache

import (
	"context"
	"errors"
)

// Chain вызывает все ревалидаторы по очереди; ошибка одного не останавливает остальные
type Chain []Revalidator

func (c Chain) RevalidateTag(ctx context.Context, tag string) error {
	var errs []error
	for _, r := range c {
		if err := r.RevalidateTag(ctx, tag); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
