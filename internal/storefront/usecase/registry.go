package usecase

import "marketplace-bot/internal/storefront"

// Registry wires every route kind to its handler.
func (uc *implUseCase) Registry() storefront.Registry {
	return storefront.Registry{
		storefront.KindStart:          uc.Start,
		storefront.KindAuthPrompt:     uc.AuthPrompt,
		storefront.KindBrowse:         uc.Browse,
		storefront.KindBrowseNext:     uc.Browse,
		storefront.KindBrowsePrev:     uc.Browse,
		storefront.KindOrders:         uc.Orders,
		storefront.KindWallet:         uc.Wallet,
		storefront.KindWalletDeposit:  uc.WalletDeposit,
		storefront.KindWalletWithdraw: uc.WalletWithdraw,
		storefront.KindHelp:           uc.Help,
		storefront.KindGreeting:       uc.Greeting,
	}
}
