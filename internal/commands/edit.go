package commands

import "github.com/ruminaider/mcpack/internal/pack"

// Remove deletes a component together with its override file and local jars.
func Remove(env Env, uid string) error {
	return withList(env, func(l *pack.List) error {
		return l.RemoveByID(uid)
	})
}

// Move moves a component one place in direction. It reports whether the
// list changed; builtins and the ends of the list do not move.
func Move(env Env, uid string, direction pack.Direction) (bool, error) {
	var moved bool
	err := withList(env, func(l *pack.List) error {
		index, err := indexOf(l, uid)
		if err != nil {
			return err
		}
		moved = l.Move(index, direction)
		return nil
	})
	return moved, err
}

// Customize copies a component's metadata into an override file.
func Customize(env Env, uid string) error {
	return withList(env, func(l *pack.List) error {
		index, err := indexOf(l, uid)
		if err != nil {
			return err
		}
		return l.Customize(index)
	})
}

// Revert deletes a component's override file.
func Revert(env Env, uid string) error {
	return withList(env, func(l *pack.List) error {
		index, err := indexOf(l, uid)
		if err != nil {
			return err
		}
		return l.RevertToBase(index)
	})
}

// RevertAll undoes every customization in the instance.
func RevertAll(env Env) error {
	return withList(env, func(l *pack.List) error {
		return l.RevertToVanilla()
	})
}

// CustomComponents returns the uids of the customized components.
func CustomComponents(env Env) ([]string, error) {
	var uids []string
	err := withList(env, func(l *pack.List) error {
		for _, c := range l.Components() {
			if c.IsCustom() {
				uids = append(uids, c.ID())
			}
		}
		return nil
	})
	return uids, err
}
