package internal

import "sync"

type DoneChan chan struct{}

type DoneFunc func() DoneChan

// WrapWaitGroup returns a DoneChan that closes once wg.Wait returns.
func WrapWaitGroup(wg *sync.WaitGroup) DoneChan {
	ret := make(DoneChan)
	go func() {
		wg.Wait()
		close(ret)
	}()
	return ret
}

// Combine returns a DoneChan that closes once every one of chans has closed.
func Combine(chans ...DoneChan) DoneChan {
	ret := make(DoneChan)
	go func() {
		for _, c := range chans {
			<-c
		}
		close(ret)
	}()
	return ret
}
